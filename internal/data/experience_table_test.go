package data

import "testing"

func TestRequiredExperience(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, -1},
		{1, 0},
		{2, 100},
		{4, 450},
		{12, 3850},
		{13, -1},
	}

	for _, tt := range tests {
		got := RequiredExperience(tt.level)
		if got != tt.want {
			t.Errorf("RequiredExperience(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestExperienceTableMonotonic(t *testing.T) {
	for i := 1; i < MaxHeroLevel; i++ {
		if ExperienceTable[i] <= ExperienceTable[i-1] {
			t.Errorf("level %d threshold %d not above level %d threshold %d",
				i+1, ExperienceTable[i], i, ExperienceTable[i-1])
		}
	}
}

func TestThresholdsIsCopy(t *testing.T) {
	th := Thresholds()
	th[1] = 0
	if ExperienceTable[1] != 100 {
		t.Fatalf("Thresholds() leaked the table: got %d", ExperienceTable[1])
	}
}
