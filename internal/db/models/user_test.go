package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPassword(t *testing.T) {
	hashed := HashPassword("s3cret")

	user := User{Username: "alice", Password: &hashed}

	assert.True(t, user.VerifyPassword("s3cret"))
	assert.False(t, user.VerifyPassword("wrong"))

	// accounts without a local password never verify
	external := User{Username: "bob"}
	assert.False(t, external.VerifyPassword("s3cret"))
}
