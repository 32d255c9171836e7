//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmenityCheckboxes(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Directory should finish loading")

	// Focus the checkbox pane; the first amenity is Bike Paths
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.SendKeys(KeySpace))
	require.True(t, tf.SeePlainSince(mark, "[x] Bike Paths"), "Bike Paths should be checked")
	require.True(t, tf.SeePlainSince(mark, "1 of 4 parks"), "Only Freedom Park has bike paths")

	// Checking a second amenity requires both
	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyDown))
	require.NoError(t, tf.SendKeys(KeySpace))
	require.True(t, tf.SeePlainSince(mark, "0 of 4 parks"), "No park has bike paths and a dog park")
	require.True(t, tf.SeePlainSince(mark, "No parks match"), "Empty state should be shown")

	// Only-this replaces the selection
	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyDown))
	require.NoError(t, tf.SendKeys(KeyOnly))
	require.True(t, tf.SeePlainSince(mark, "[Amenities: Playground]"), "Selection should be just Playground")
	require.True(t, tf.SeePlainSince(mark, "2 of 4 parks"))

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyClear))
	require.True(t, tf.SeePlainSince(mark, "4 of 4 parks"), "c should clear the amenity filter")
}

func TestSearchAndAmenitiesCombine(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Directory should finish loading")

	require.NoError(t, tf.Search("park"))
	require.True(t, tf.SeePlain("4 of 4 parks"))

	// Trails is the last amenity
	mark := tf.Mark()
	require.NoError(t, tf.SendKeys(KeyTab))
	require.NoError(t, tf.SendKeys("G"))
	require.NoError(t, tf.SendKeys(KeySpace))
	require.True(t, tf.SeePlainSince(mark, "2 of 4 parks"), "Piedmont and Freedom have trails")

	mark = tf.Mark()
	require.NoError(t, tf.Search("pied"))
	require.True(t, tf.SeePlainSince(mark, "1 of 4 parks"), "Both filters apply together")
}
