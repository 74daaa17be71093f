package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarimvitrin.com/app/pkg/view"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashError, Message: "Kayıt başarısız", Fields: map[string]string{"İsim": "Bu alan zorunludur."}})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashError, f.Kind)
	assert.Equal(t, "Kayıt başarısız", f.Message)
	assert.Equal(t, "Bu alan zorunludur.", f.Fields["İsim"])
}

func TestCodec_RejectsTamperedAndEmpty(t *testing.T) {
	c := NewCodec([]byte("secret"), "flash", false)
	other := NewCodec([]byte("other"), "flash", false)

	v, err := other.Encode(view.Flash{Kind: view.FlashInfo, Message: "x"})
	require.NoError(t, err)
	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)

	empty, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "  "})
	require.NoError(t, err)
	_, err = c.Decode(empty)
	assert.ErrorIs(t, err, ErrInvalid)
}
