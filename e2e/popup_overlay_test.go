//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParkDetailPopup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Directory should finish loading")

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlainSince(mark, "Amenities"), "Detail should list amenities")
	require.True(t, tf.SeePlainSince(mark, "esc to close"), "Detail popup should open")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlainSince(mark, "Filter by Amenities"), "Main view should return")
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Directory should finish loading")

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlainSince(mark, "only this amenity"), "Help should list the amenity keys")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlainSince(mark, "Piedmont Park"), "Main view should return")
}
