package message

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadableKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"color", "Warna"},
		{"colour", "Warna"},
		{"Warna", "Warna"},
		{"pa_warna", "Warna"},
		{"attribute_pa_size", "Ukuran"},
		{"UKURAN", "Ukuran"},
		{"material", "Bahan"},
		{"custom-engraving_text", "Custom Engraving Text"},
		{"gift wrap", "Gift Wrap"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadableKey(tt.in))
		})
	}
}

func TestReadableKey_Idempotent(t *testing.T) {
	for _, in := range []string{"pa_color", "attribute_size", "gift-wrap"} {
		once := ReadableKey(in)
		assert.Equal(t, once, ReadableKey(once), "input %q", in)
	}
}

func TestReadableValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"s", "Small (S)"},
		{"S", "Small (S)"},
		{"small", "Small (S)"},
		{"m", "Medium (M)"},
		{"XL", "Extra Large (XL)"},
		{"extra-large", "Extra Large (XL)"},
		{"merah", "Merah"},
		{"dark_blue", "Dark Blue"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadableValue(tt.in))
		})
	}
}

func TestReadableValue_Idempotent(t *testing.T) {
	for _, in := range []string{"small", "xl", "merah"} {
		once := ReadableValue(in)
		assert.Equal(t, once, ReadableValue(once), "input %q", in)
	}
}

// Run with -race: the readable transforms are called from concurrently
// served requests and must not share transform state.
func TestReadableTransforms_Concurrent(t *testing.T) {
	keys := []string{"pa_warna", "attribute_size", "custom-engraving_text", "gift wrap"}
	values := []string{"s", "extra-large", "merah", "dark_blue"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, k := range keys {
					ReadableKey(k)
				}
				for _, v := range values {
					ReadableValue(v)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "Warna", ReadableKey("pa_warna"))
	assert.Equal(t, "Dark Blue", ReadableValue("dark_blue"))
}

func TestIsInternalKey(t *testing.T) {
	assert.True(t, isInternalKey("_qty"))
	assert.True(t, isInternalKey("_line_total"))
	assert.True(t, isInternalKey("_anything_underscored"))
	assert.False(t, isInternalKey("warna"))
	assert.False(t, isInternalKey("pa_size"))
}
