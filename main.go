package main

import "github.com/AMSkillPower/TaskMngrCommenti/cmd"

func main() {
	cmd.Execute()
}
