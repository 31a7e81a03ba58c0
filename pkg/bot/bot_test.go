package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NicolasFache/Formula1/pkg/model"
)

func TestSessionCommands(t *testing.T) {
	event := model.EventType{
		EventName:       "Austrian Grand Prix",
		Season:          2023,
		IsSprintWeekend: true,
		Sessions: []model.SessionRef{
			{Name: "Practice 1", APIName: "practice_1"},
			{Name: "Sprint", APIName: "sprint"},
			{Name: "Race", APIName: "race"},
		},
	}

	out := SessionCommands(2023, "austria", event)
	assert.Contains(t, out, "/load 2023 austria sprint")
	assert.Contains(t, out, "/load 2023 austria race")
	assert.Contains(t, out, "Practice 1")
}
