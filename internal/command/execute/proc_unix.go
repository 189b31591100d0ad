//go:build unix

package execute

import (
	"os/exec"
	"syscall"
)

// killGroupOnCancel runs yt-dlp in its own process group so cancellation also
// kills the ffmpeg and downloader children holding its output pipes.
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
