//go:build !unix

package execute

import "os/exec"

// killGroupOnCancel keeps exec's default of killing only yt-dlp itself.
func killGroupOnCancel(*exec.Cmd) {}
