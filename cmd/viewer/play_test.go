package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayOptions_Selection(t *testing.T) {
	sel, err := (&playOptions{}).selection()
	require.NoError(t, err)
	assert.Nil(t, sel)

	sel, err = (&playOptions{from: "2021-08-31", to: "2021-07-01"}).selection()
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC), sel.From)

	_, err = (&playOptions{from: "2021-07-01"}).selection()
	assert.ErrorIs(t, err, errHalfRange)

	_, err = (&playOptions{from: "07/01/2021", to: "2021-07-02"}).selection()
	assert.Error(t, err)
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["play"])
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
