package die

import (
	"math"
	"testing"

	"github.com/KirkDiggler/montecarlo/random"
	randomMocks "github.com/KirkDiggler/montecarlo/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DieTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *randomMocks.MockSource

	testFaces []string
}

func (s *DieTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = randomMocks.NewMockSource(s.mockCtrl)

	s.testFaces = []string{"A", "B", "C"}
}

func (s *DieTestSuite) newTestDie() *Die[string] {
	d, err := New(&Config[string]{
		Faces:  s.testFaces,
		Source: s.mockSource,
	})
	s.Require().NoError(err)
	return d
}

func (s *DieTestSuite) TestNewDefaultsEveryWeightToOne() {
	d := s.newTestDie()

	snapshot := d.Show()
	s.Equal(s.testFaces, snapshot.Faces)
	for _, face := range s.testFaces {
		s.Equal(1.0, snapshot.Weights[face])
	}
	s.Len(snapshot.Weights, len(s.testFaces))
}

func (s *DieTestSuite) TestNewNilConfig() {
	d, err := New[string](nil)

	s.Nil(d)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *DieTestSuite) TestNewEmptyFaces() {
	d, err := New(&Config[string]{Faces: []string{}})

	s.Nil(d)
	s.ErrorIs(err, ErrNoFaces)
}

func (s *DieTestSuite) TestNewNilFaces() {
	d, err := New(&Config[int]{})

	s.Nil(d)
	s.ErrorIs(err, ErrNoFaces)
}

func (s *DieTestSuite) TestNewDuplicateFaces() {
	d, err := New(&Config[string]{Faces: []string{"A", "A", "B"}})

	s.Nil(d)
	s.ErrorIs(err, ErrDuplicateFace)
}

func (s *DieTestSuite) TestSetWeightUnknownFace() {
	d := s.newTestDie()

	err := d.SetWeight("D", 2.0)

	s.ErrorIs(err, ErrFaceNotFound)
}

func (s *DieTestSuite) TestSetWeightNaN() {
	d := s.newTestDie()

	err := d.SetWeight("A", math.NaN())

	s.ErrorIs(err, ErrInvalidWeight)
	s.Equal(1.0, d.Show().Weights["A"])
}

func (s *DieTestSuite) TestSetWeightChangesOnlyThatFace() {
	d := s.newTestDie()

	s.Require().NoError(d.SetWeight("B", 5.0))

	snapshot := d.Show()
	s.Equal(1.0, snapshot.Weights["A"])
	s.Equal(5.0, snapshot.Weights["B"])
	s.Equal(1.0, snapshot.Weights["C"])
}

func (s *DieTestSuite) TestRollReturnsRequestedCount() {
	d := s.newTestDie()
	s.mockSource.EXPECT().Float64().Return(0.0).Times(10)

	results, err := d.Roll(10)

	s.Require().NoError(err)
	s.Len(results, 10)
	for _, face := range results {
		s.Contains(s.testFaces, face)
	}
}

func (s *DieTestSuite) TestRollZeroTimes() {
	d := s.newTestDie()

	results, err := d.Roll(0)

	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)
}

func (s *DieTestSuite) TestRollNegativeCount() {
	d := s.newTestDie()

	results, err := d.Roll(-1)

	s.Nil(results)
	s.ErrorIs(err, ErrInvalidRollCount)
}

func (s *DieTestSuite) TestRollSelectsByCumulativeWeight() {
	d := s.newTestDie()

	// Equal weights: total 3, cumulative boundaries at 1 and 2
	s.mockSource.EXPECT().Float64().Return(0.0)
	s.mockSource.EXPECT().Float64().Return(0.5)
	s.mockSource.EXPECT().Float64().Return(0.99)

	results, err := d.Roll(3)

	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C"}, results)
}

func (s *DieTestSuite) TestRollSkipsZeroWeightFace() {
	d := s.newTestDie()
	s.Require().NoError(d.SetWeight("B", 0.0))

	// Total is 2; any draw must land on A or C
	s.mockSource.EXPECT().Float64().Return(0.49)
	s.mockSource.EXPECT().Float64().Return(0.5)
	s.mockSource.EXPECT().Float64().Return(0.51)

	results, err := d.Roll(3)

	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "C"}, results)
}

func (s *DieTestSuite) TestRollAllWeightsZero() {
	d := s.newTestDie()
	for _, face := range s.testFaces {
		s.Require().NoError(d.SetWeight(face, 0.0))
	}

	results, err := d.Roll(1)

	s.Nil(results)
	s.ErrorIs(err, ErrNoValidWeights)
}

func (s *DieTestSuite) TestRollNegativeWeight() {
	d := s.newTestDie()
	s.Require().NoError(d.SetWeight("A", -1.0))

	results, err := d.Roll(1)

	s.Nil(results)
	s.ErrorIs(err, ErrNoValidWeights)
}

func (s *DieTestSuite) TestRollOne() {
	d := s.newTestDie()
	s.mockSource.EXPECT().Float64().Return(0.5)

	face, err := d.RollOne()

	s.Require().NoError(err)
	s.Equal("B", face)
}

func (s *DieTestSuite) TestRollOneReportsWeightErrors() {
	d := s.newTestDie()
	for _, face := range s.testFaces {
		s.Require().NoError(d.SetWeight(face, 0.0))
	}

	_, err := d.RollOne()

	s.ErrorIs(err, ErrNoValidWeights)
}

func (s *DieTestSuite) TestRollUsesWeightsAtCallTime() {
	d := s.newTestDie()

	s.mockSource.EXPECT().Float64().Return(0.5).Times(2)

	first, err := d.RollOne()
	s.Require().NoError(err)
	s.Equal("B", first)

	// Pile the weight onto C; the same variate must now land there
	s.Require().NoError(d.SetWeight("C", 100.0))

	second, err := d.RollOne()
	s.Require().NoError(err)
	s.Equal("C", second)
}

func (s *DieTestSuite) TestWeightedProportion() {
	d, err := New(&Config[int]{
		Faces:  []int{1, 2, 3, 4, 5, 6},
		Source: random.New(&random.Config{Seed: 42}),
	})
	s.Require().NoError(err)
	s.Require().NoError(d.SetWeight(6, 1000.0))

	const numRolls = 10000
	results, err := d.Roll(numRolls)
	s.Require().NoError(err)

	sixes := 0
	for _, face := range results {
		if face == 6 {
			sixes++
		}
	}

	// Expected share is 1000/1005, about 0.995
	share := float64(sixes) / float64(numRolls)
	s.InDelta(1000.0/1005.0, share, 0.01)
}

func (s *DieTestSuite) TestSameSeedSameRolls() {
	newSeeded := func() *Die[int] {
		d, err := New(&Config[int]{
			Faces:  []int{1, 2, 3, 4, 5, 6},
			Source: random.New(&random.Config{Seed: 7}),
		})
		s.Require().NoError(err)
		return d
	}

	first, err := newSeeded().Roll(50)
	s.Require().NoError(err)
	second, err := newSeeded().Roll(50)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *DieTestSuite) TestShowSnapshotIsIsolated() {
	d := s.newTestDie()

	snapshot := d.Show()
	snapshot.Weights["A"] = 99.0
	snapshot.Faces[0] = "Z"

	fresh := d.Show()
	s.Equal(1.0, fresh.Weights["A"])
	s.Equal("A", fresh.Faces[0])
}

func (s *DieTestSuite) TestFacesReturnsCopy() {
	d := s.newTestDie()

	faces := d.Faces()
	faces[0] = "Z"

	s.Equal("A", d.Faces()[0])
}

func TestDieTestSuite(t *testing.T) {
	suite.Run(t, new(DieTestSuite))
}
