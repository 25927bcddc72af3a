package models_test

import (
	"testing"

	"github.com/miyakoshi/septade/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		birthdate string
		want      string
	}{
		{"山田太郎", "1990-05-15", "user_t9qnx6"},
		{"佐藤花子", "2000-01-01", "user_p15zbq"},
		{"yamada taro", "1990-05-15", "user_mgnr5g"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, models.UserIdentifier(tt.name, tt.birthdate))
	}
}

func TestUserIdentifierNormalisesName(t *testing.T) {
	t.Parallel()

	base := models.UserIdentifier("yamada taro", "1990-05-15")
	assert.Equal(t, base, models.UserIdentifier(" Yamada Taro ", "1990-05-15"))
	assert.NotEqual(t, base, models.UserIdentifier("yamada taro", "1990-05-16"))
}
