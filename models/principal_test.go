package models

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_WellKnownTextForms(t *testing.T) {
	assert.Equal(t, "2vxsx-fae", AnonymousPrincipal.String())
	assert.Equal(t, "aaaaa-aa", ManagementPrincipal.String())
	assert.True(t, AnonymousPrincipal.IsAnonymous())
	assert.False(t, ManagementPrincipal.IsAnonymous())
}

func TestCanisterPrincipal_LocalSequence(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{n: 1, want: "bkyz2-fmaaa-aaaaa-qaaaq-cai"},
		{n: 2, want: "bd3sg-teaaa-aaaaa-qaaba-cai"},
		{n: 3, want: "be2us-64aaa-aaaaa-qaabq-cai"},
		{n: 4, want: "br5f7-7uaaa-aaaaa-qaaca-cai"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CanisterPrincipal(tt.n).String())
		})
	}
}

func TestParsePrincipal_CanisterBytes(t *testing.T) {
	p, err := ParsePrincipal("bkyz2-fmaaa-aaaaa-qaaaq-cai")
	require.NoError(t, err)
	assert.Equal(t, "80000000001000010101", hex.EncodeToString(p.Bytes()))
}

func TestParsePrincipal_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "empty", input: "", err: ErrInvalidPrincipal},
		{name: "not base32", input: "!!!!!-!!", err: ErrInvalidPrincipal},
		{name: "bad checksum", input: "2vxsx-faa", err: ErrPrincipalChecksum},
		{name: "wrong grouping", input: "2vxs-xfae", err: ErrInvalidPrincipal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrincipal(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParsePrincipal_UppercaseAccepted(t *testing.T) {
	p, err := ParsePrincipal("2VXSX-FAE")
	require.NoError(t, err)
	assert.True(t, p.IsAnonymous())
}

func TestSelfAuthenticatingPrincipal(t *testing.T) {
	p := SelfAuthenticatingPrincipal([]byte("der-encoded-public-key"))
	raw := p.Bytes()

	require.Len(t, raw, 29)
	assert.Equal(t, byte(0x02), raw[28])

	parsed, err := ParsePrincipal(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestPrincipalFromBytes_TooLong(t *testing.T) {
	_, err := PrincipalFromBytes(make([]byte, 30))
	assert.ErrorIs(t, err, ErrInvalidPrincipal)
}

func TestAccount_KeyRoundTrip(t *testing.T) {
	owner := CanisterPrincipal(1)

	def := NewAccount(owner)
	zeroSub := Account{Owner: owner, Subaccount: make([]byte, SubaccountLength)}
	assert.True(t, def.Equal(zeroSub))
	assert.Equal(t, owner.String(), def.Key())

	sub := make([]byte, SubaccountLength)
	sub[31] = 1
	withSub := Account{Owner: owner, Subaccount: sub}
	assert.False(t, def.Equal(withSub))

	parsed, err := ParseAccountKey(withSub.Key())
	require.NoError(t, err)
	assert.True(t, withSub.Equal(parsed))

	_, err = ParseAccountKey(owner.String() + ".abcd")
	assert.ErrorIs(t, err, ErrInvalidSubaccount)
}
