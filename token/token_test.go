package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/combo/token"
)

func TestNextTag(t *testing.T) {
	a := token.NextTag()
	b := token.NextTag()

	assert.Greater(t, int(a), int(token.Last))
	assert.Equal(t, a+1, b)
	assert.Equal(t, "None", token.None.String())
	assert.Equal(t, "Literal", token.Literal.String())
	assert.Contains(t, a.String(), "Tag(")
}

func TestTokenLen(t *testing.T) {
	tok := token.Token[string]{Tag: token.Literal, Start: 3, End: 7, Value: "abcd"}
	assert.Equal(t, 4, tok.Len())
}
