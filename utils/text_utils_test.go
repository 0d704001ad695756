package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateSlice(t *testing.T) {
	assert.Equal(t, []string{"clio", "slack"}, DeduplicateSlice([]string{"clio", " ", "slack", "clio "}))
	assert.Equal(t, []string{}, DeduplicateSlice(nil))
}

func TestToggleValueTwiceRestores(t *testing.T) {
	original := []string{"attorney", "solo"}
	for _, v := range []string{"attorney", "finance", "solo", "consultant"} {
		once := ToggleValue(original, v)
		twice := ToggleValue(once, v)
		if v == "attorney" || v == "solo" {
			assert.NotContains(t, once, v)
		} else {
			assert.Contains(t, once, v)
		}
		assert.ElementsMatch(t, original, twice, v)
	}
	// 原切片不被修改
	assert.Equal(t, []string{"attorney", "solo"}, original)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SR", Initials("Sarah R."))
	assert.Equal(t, "MC", Initials("Michael C."))
	assert.Equal(t, "MA", Initials("madonna"))
	assert.Equal(t, "X", Initials("x"))
	assert.Equal(t, "", Initials(""))
}

func TestAvatarColorStable(t *testing.T) {
	assert.Equal(t, AvatarColor("Sarah R."), AvatarColor("Sam"))
	// 'S' = 83, 83 % 7 = 6
	assert.Equal(t, AvatarColors[6], AvatarColor("Sarah R."))
	assert.Equal(t, AvatarColors[0], AvatarColor(""))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "N/A", JoinOrDefault(nil, "N/A"))
	assert.Equal(t, "civil, criminal", JoinOrDefault([]string{"civil", "criminal"}, "N/A"))
	assert.Equal(t, "Not specified", OrDefault("  ", "Not specified"))
	assert.Equal(t, "ET", OrDefault("ET", "Not specified"))
}
