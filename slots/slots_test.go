package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_MorningAndAfternoonBlocks(t *testing.T) {
	template := Template()

	assert.Len(t, template, 13)
	assert.Equal(t, "09:00", template[0])
	assert.Equal(t, "11:30", template[5])
	assert.Equal(t, "14:00", template[6])
	assert.Equal(t, "17:00", template[12])
	assert.NotContains(t, template, "12:00")
	assert.NotContains(t, template, "13:30")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("09:30"))
	assert.True(t, Valid("16:30"))
	assert.False(t, Valid("12:00"))
	assert.False(t, Valid("09:15"))
	assert.False(t, Valid(""))
}

func TestAvailable_SubtractsTakenSlots(t *testing.T) {
	available := Available([]string{"09:00", "14:30"})

	assert.Len(t, available, 11)
	assert.NotContains(t, available, "09:00")
	assert.NotContains(t, available, "14:30")
	assert.Contains(t, available, "09:30")
}

func TestAvailable_NoneTaken(t *testing.T) {
	assert.Equal(t, Template(), Available(nil))
}

func TestAvailable_AllTaken(t *testing.T) {
	assert.Empty(t, Available(Template()))
}
