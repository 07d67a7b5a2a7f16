package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIndoorCode(t *testing.T) {
	assert.Equal(t, "H815", NormalizeIndoorCode("  h815 "))
	assert.Equal(t, "H961-1", NormalizeIndoorCode("h961-1"))
	assert.Equal(t, "", NormalizeIndoorCode("   "))
}

func TestClassifyIndoorCode(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
		want       IndoorCodeShape
	}{
		{"教室形式", "H815", IndoorCodeShapeRoom},
		{"1文字の数字でも教室形式", "H1", IndoorCodeShapeRoom},
		{"複数文字の建物コード", "MB101", IndoorCodeShapeRoom},
		{"オフィス形式", "H961-1", IndoorCodeShapeOffice},
		{"数字が先行する場合はどちらでもない", "815H", IndoorCodeShapeNone},
		{"英字の直後にハイフンはどちらでもない", "H-815", IndoorCodeShapeNone},
		{"英字のみはどちらでもない", "HALL", IndoorCodeShapeNone},
		{"数字のみはどちらでもない", "815", IndoorCodeShapeNone},
		{"末尾にハイフンはどちらでもない", "H961-", IndoorCodeShapeNone},
		{"空文字はどちらでもない", "", IndoorCodeShapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIndoorCode(tt.normalized))
		})
	}
}
