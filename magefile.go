//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	outDir    = "bin"
	airTmpDir = "tmp"
	binary    = "tarimvitrin-web"
	webPkg    = "./cmd/web"
)

// devTools are installed by `mage tools`.
var devTools = map[string]string{
	"templ":         "github.com/a-h/templ/cmd/templ@v0.3.865",
	"air":           "github.com/air-verse/air@latest",
	"golangci-lint": "github.com/golangci/golangci-lint/v2/cmd/golangci-lint@latest",
}

var Default = Dev

// Gen regenerates the *_templ.go files under templates/.
func Gen() error {
	if _, err := exec.LookPath("templ"); err != nil {
		return fmt.Errorf("templ CLI missing, run `mage tools`: %w", err)
	}
	fmt.Println("templ generate")
	return sh.RunV("templ", "generate", "-path", "./templates")
}

// Dev starts the app under air when it is installed.
func Dev() error {
	mg.SerialDeps(Tidy, Gen)

	if _, err := exec.LookPath("air"); err != nil {
		fmt.Println("no air on PATH, plain go run instead")
		return Run()
	}
	return sh.RunV("air")
}

func Run() error {
	mg.Deps(Gen)
	return sh.RunV("go", "run", webPkg)
}

// Build writes a static binary to bin/.
func Build() error {
	mg.SerialDeps(Tidy, Gen)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	target := filepath.Join(outDir, binary)
	if runtime.GOOS == "windows" {
		target += ".exe"
	}

	fmt.Println("go build ->", target)
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "0"},
		"go", "build", "-trimpath", "-o", target, webPkg)
}

func Test() error {
	return sh.RunV("go", "test", "-count=1", "./...")
}

func TestRace() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

func Fmt() error {
	if err := sh.RunV("gofmt", "-w", "cmd", "internal", "pkg", "templates", "magefile.go"); err != nil {
		return err
	}
	if _, err := exec.LookPath("templ"); err == nil {
		return sh.RunV("templ", "fmt", "templates")
	}
	return nil
}

func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return fmt.Errorf("golangci-lint missing, run `mage tools`: %w", err)
	}
	return sh.RunV("golangci-lint", "run", "--timeout=3m", "./...")
}

// Check is what CI runs.
func Check() {
	mg.SerialDeps(Fmt, Lint, Test)
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

func Clean() error {
	for _, dir := range []string{outDir, airTmpDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}

// CreateTable creates the products table in the MySQL database at DB_DSN.
func CreateTable() error {
	return sh.RunV("go", "run", "./cmd/tools/createtable")
}

func Tools() error {
	for name, pkg := range devTools {
		fmt.Println("installing", name)
		if err := sh.RunV("go", "install", pkg); err != nil {
			return err
		}
	}
	return nil
}
