package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "nike", want: "Nike"},
		{in: "NIKE", want: "Nike"},
		{in: "  new balance ", want: "Newbalance"},
		{in: "h&m", want: "Hm"},
		{in: "levi's 501", want: "Levis"},
		{in: "123", want: ""},
		{in: "", want: ""},
		{in: "émile", want: "Mile"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestOrderSizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"S", "L", "XXL"}, OrderSizes([]string{"XXL", "L", "S", "L", "XS"}))
	assert.Empty(t, OrderSizes(nil))
}
