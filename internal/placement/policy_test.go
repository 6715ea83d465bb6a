package placement

import "testing"

func TestFiveTier(t *testing.T) {
	cases := []struct {
		acc  float64
		want int
	}{
		{1, 7}, {0.9, 7}, {0.89, 5}, {0.75, 5}, {0.6, 3}, {0.59, 2}, {0.4, 2}, {0.39, 1}, {0, 1},
	}
	for _, c := range cases {
		if got := FiveTier(c.acc); got != c.want {
			t.Errorf("FiveTier(%v) = %d, want %d", c.acc, got, c.want)
		}
	}
}

func TestTwoTier(t *testing.T) {
	cases := []struct {
		acc  float64
		want int
	}{
		{1, 5}, {0.91, 5}, {0.9, 2}, {0.71, 2}, {0.7, 1}, {0, 1},
	}
	for _, c := range cases {
		if got := TwoTier(c.acc); got != c.want {
			t.Errorf("TwoTier(%v) = %d, want %d", c.acc, got, c.want)
		}
	}
}

func TestPolicyByName(t *testing.T) {
	if PolicyByName("two-tier")(0.8) != 2 {
		t.Error("two-tier not selected")
	}
	if PolicyByName("")(0.8) != 5 || PolicyByName("bogus")(0.8) != 5 {
		t.Error("unknown names should fall back to five-tier")
	}
}

func TestSpeedProficiency(t *testing.T) {
	cases := []struct {
		correct bool
		secs    float64
		want    int
	}{
		{false, 1, 20}, {true, 4.9, 80}, {true, 5, 60}, {true, 9.9, 60}, {true, 10, 40},
	}
	for _, c := range cases {
		if got := SpeedProficiency(c.correct, c.secs); got != c.want {
			t.Errorf("SpeedProficiency(%v, %v) = %d, want %d", c.correct, c.secs, got, c.want)
		}
	}
}
