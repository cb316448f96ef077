//go:build !unix

package sysinfo

func fillPlatform(info *Info) {}
