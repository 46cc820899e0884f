//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	path, err := tf.CreateTestFile("exit.txt", "exit test\n")
	require.NoError(t, err)

	err = tf.StartApp(path)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should show bufcycle title")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// Send 'q' to quit
	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	// Wait for graceful shutdown
	select {
	case exitErr := <-done:
		t.Logf("Process exited with 'q' command (exit code: %v)", exitErr)
		return
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
	}

	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (exit code: %v)", exitErr)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	path, err := tf.CreateTestFile("help.txt", "help toggle test\n")
	require.NoError(t, err)

	err = tf.StartApp(path)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should show bufcycle title")

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("Buffer cycling"), "Help overlay should appear")

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("help toggle test"), "Content should return after closing help")
}
