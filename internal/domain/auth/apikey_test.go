package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopes(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		scope Scope
		want  bool
	}{
		{name: "granted", names: []string{"admin"}, scope: ScopeAdmin, want: true},
		{name: "case-insensitive", names: []string{" Admin "}, scope: ScopeAdmin, want: true},
		{name: "wildcard", names: []string{"*"}, scope: ScopeAdmin, want: true},
		{name: "other scope", names: []string{"read"}, scope: ScopeAdmin},
		{name: "none", scope: ScopeAdmin},
		{name: "blank names ignored", names: []string{"", "  "}, scope: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewScopes(tt.names...).Has(tt.scope))
		})
	}
}

func TestScopes_Names(t *testing.T) {
	assert.Equal(t, []string{"admin", "read"}, NewScopes("read", "ADMIN", "admin").Names())
	assert.Empty(t, NewScopes().Names())
}

func TestDigest(t *testing.T) {
	a := Digest([]byte("pepper"), "key")
	assert.Len(t, a, 32)
	assert.Equal(t, a, Digest([]byte("pepper"), "key"))
	assert.NotEqual(t, a, Digest([]byte("other"), "key"))
	assert.NotEqual(t, hex.EncodeToString(a), hex.EncodeToString(Digest([]byte("pepper"), "key2")))
}
