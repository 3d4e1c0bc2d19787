package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestReference(t *testing.T) {
	cases := []struct {
		name string
		l    LecturaModel
		want string
	}{
		{"capítulo", LecturaModel{LecturaBook: "Salmos", LecturaChapter: 23}, "Salmos 23"},
		{"versículo", LecturaModel{LecturaBook: "Juan", LecturaChapter: 3, LecturaVerseFrom: intp(16)}, "Juan 3:16"},
		{"rango", LecturaModel{LecturaBook: "Juan", LecturaChapter: 3, LecturaVerseFrom: intp(16), LecturaVerseTo: intp(18)}, "Juan 3:16-18"},
		{"rango igual", LecturaModel{LecturaBook: "1 Corintios", LecturaChapter: 13, LecturaVerseFrom: intp(4), LecturaVerseTo: intp(4)}, "1 Corintios 13:4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.l.Reference())
		})
	}
}
