package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accented word", input: "Mi Negocio Café", expected: "mi-negocio-cafe"},
		{name: "enye", input: "Restaurante El Ñandú", expected: "restaurante-el-nandu"},
		{name: "punctuation and padding", input: "  Tienda 123!!!  ", expected: "tienda-123"},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "symbol runs collapse", input: "A & B -- C", expected: "a-b-c"},
		{name: "leading symbols", input: "***Panadería", expected: "panaderia"},
		{name: "non latin dropped", input: "Café 東京", expected: "cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nunoa", NormalizeText("  Ñuñoa "))
	assert.Equal(t, "vina del mar", NormalizeText("Viña   del\tMar"))
	assert.Equal(t, "ohiggins", NormalizeText("O'Higgins"))
	assert.Equal(t, "", NormalizeText("  "))
	assert.Equal(t, NormalizeText("Concepción"), NormalizeText("CONCEPCION"))
	assert.Equal(t, "cafe bar luna", NormalizeText("Café-Bar Luna"))
	assert.Equal(t, "panaderia el sol", NormalizeText("¡Panadería (El Sol)!"))
	assert.Equal(t, "東京", NormalizeText(" 東京 "))
	assert.Equal(t, "", NormalizeText("???"))
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Las Condes", TitleCase("las condes"))
	assert.Equal(t, "Ñuñoa", TitleCase(" ñuñoa"))
}
