package usecase

import (
	"context"
	"testing"

	"github.com/zhar97/solar-om-analytics/internal/domain"
)

const plantFixture = `
plants:
  - plant_id: PLANT_003
    plant_name: Sierra Este
  - plant_id: PLANT_001
    plant_name: Sonnenfeld Nord
  - plant_id: PLANT_002
    plant_name: Valle Solar
`

func TestPlantListOrderedByID(t *testing.T) {
	u := NewPlantUsecase(testStore(t, plantFixture), testLogger())

	plants, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(plants) != 3 {
		t.Fatalf("got %d plants, want 3", len(plants))
	}
	for i, want := range []string{"PLANT_001", "PLANT_002", "PLANT_003"} {
		if plants[i].PlantID != want {
			t.Errorf("plants[%d] = %s, want %s", i, plants[i].PlantID, want)
		}
	}
}

func TestPlantListNoData(t *testing.T) {
	u := NewPlantUsecase(emptyStore(t), testLogger())

	if _, err := u.List(context.Background()); !domain.IsNoData(err) {
		t.Fatalf("expected NO_DATA, got %v", err)
	}
}
