package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/helpdesk-community/helpdesk-api/consts"
)

// GenerateInviteCode returns a random private deck invite code. The alphabet
// leaves out I, O, 0 and 1 which are easy to misread.
func GenerateInviteCode() (string, error) {
	alphabet := consts.InviteCodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, consts.InviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
