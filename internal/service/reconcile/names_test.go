package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSoldierInfo(t *testing.T) {
	tests := []struct {
		name                string
		cellB, cellF        string
		rank, pib, position string
	}{
		{"rank name position", "старший солдат Коваленко Іван Петрович, водій", "", "старший солдат", "Коваленко Іван Петрович", "водій"},
		{"upper name", "сержант КОВАЛЕНКО Іван, командир відділення, 1 взвод", "", "сержант", "КОВАЛЕНКО Іван", "командир відділення, 1 взвод"},
		{"no comma", "солдат Бондар Петро", "", "солдат", "Бондар Петро", ""},
		{"empty B uses F", "", " Мельник  Ігор ", "", "Мельник Ігор", ""},
		{"no capital word uses F", "солдат мельник, стрілець", "Мельник Ігор", "", "Мельник Ігор", ""},
		{"upper run fallback", "солдат(ШЕВЧЕНКО)", "", "солдат()", "ШЕВЧЕНКО", ""},
		{"whole cell", "невідомо хто", "", "", "невідомо хто", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, name, position := ParseSoldierInfo(tt.cellB, tt.cellF)
			assert.Equal(t, tt.rank, rank)
			assert.Equal(t, tt.pib, name)
			assert.Equal(t, tt.position, position)
		})
	}
}
