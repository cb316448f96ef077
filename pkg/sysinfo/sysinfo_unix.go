//go:build unix

package sysinfo

import (
	"golang.org/x/sys/unix"
)

func fillPlatform(info *Info) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return
	}
	info.OS = unix.ByteSliceToString(uts.Sysname[:])
	info.Release = unix.ByteSliceToString(uts.Release[:])
	info.Version = unix.ByteSliceToString(uts.Version[:])
	info.Processor = unix.ByteSliceToString(uts.Machine[:])
}
