package main

import (
	_ "git.radiohub.fm/hub/hub/src/admintools"
	_ "git.radiohub.fm/hub/hub/src/migration"
	"git.radiohub.fm/hub/hub/src/website"
)

func main() {
	website.WebsiteCommand.Execute()
}
