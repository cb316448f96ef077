// Package sysinfo collects host and operating system details for display.
package sysinfo

import (
	"os"
	"os/user"
	"runtime"
	"time"
)

// Unknown is shown for values that could not be determined.
const Unknown = "unknown"

// Info holds host details.
type Info struct {
	OS        string
	Release   string
	Version   string
	Arch      string
	Processor string
	Hostname  string
	User      string
	Now       time.Time
}

// Collect gathers host details. It never fails; missing values are Unknown.
func Collect() Info {
	info := Info{
		OS:        runtime.GOOS,
		Release:   Unknown,
		Version:   Unknown,
		Arch:      runtime.GOARCH,
		Processor: Unknown,
		Hostname:  Unknown,
		User:      currentUser(),
		Now:       time.Now(),
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		info.Hostname = host
	}
	fillPlatform(&info)
	return info
}

// Lines renders the details in display order.
func (i Info) Lines() []string {
	return []string{
		"Operating system: " + i.OS + " " + i.Release,
		"Version: " + i.Version,
		"Architecture: " + i.Arch,
		"Processor: " + i.Processor,
		"Computer name: " + i.Hostname,
		"User: " + i.User,
		"Current time: " + i.Now.Format("2006-01-02 15:04:05"),
	}
}

func currentUser() string {
	for _, key := range []string{"USERNAME", "USER"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return Unknown
}
