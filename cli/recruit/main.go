package main

import (
	"os"

	recruitcmder "github.com/papercomputeco/recruit/cmd/recruit"
)

func main() {
	cmd := recruitcmder.NewRecruitCmd()
	cmd.SetArgs(recruitcmder.DefaultArgs(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
