package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		phrase string
		want   string
	}{
		{
			name:   "английская фраза",
			lang:   "en",
			phrase: "Exercise not found",
			want:   "Exercise not found",
		},
		{
			name:   "русская фраза",
			lang:   "ru",
			phrase: "Exercise not found",
			want:   "Упражнение не найдено",
		},
		{
			name:   "неизвестный язык откатывается к английскому",
			lang:   "de",
			phrase: "Exercise not found",
			want:   "Exercise not found",
		},
		{
			name:   "пустой язык откатывается к английскому",
			lang:   "",
			phrase: "User is not authenticated",
			want:   "User is not authenticated",
		},
		{
			name:   "неизвестная фраза возвращается как есть",
			lang:   "ru",
			phrase: "Some unknown phrase",
			want:   "Some unknown phrase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Localize(tt.lang, tt.phrase))
		})
	}
}
