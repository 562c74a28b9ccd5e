package color

import "runtime"

// ANSI escape codes for terminal log output.

var Reset = "\033[0m"
var Bold = "\033[1m"

var Red = "\033[31m"
var Green = "\033[32m"
var Yellow = "\033[33m"
var Blue = "\033[34m"
var Gray = "\033[37m"

var BgRed = "\033[41m"
var BgYellow = "\033[43m"
var BgBlue = "\033[44m"

func init() {
	if runtime.GOOS == "windows" {
		Reset = ""
		Bold = ""
		Red = ""
		Green = ""
		Yellow = ""
		Blue = ""
		Gray = ""
		BgRed = ""
		BgYellow = ""
		BgBlue = ""
	}
}
