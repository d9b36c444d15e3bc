package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Build bool
	Infer bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("RBXMD_DEBUG_WALK")
	d.Build = boolEnv("RBXMD_DEBUG_BUILD")
	d.Infer = boolEnv("RBXMD_DEBUG_INFER")
	d.Match = boolEnv("RBXMD_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Build() bool {
	return d.Build
}
func Infer() bool {
	return d.Infer
}
func Match() bool {
	return d.Match
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
