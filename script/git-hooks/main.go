package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/xgo/support/cmd"
	"github.com/xhd2015/xgo/support/fileutil"
	"github.com/xhd2015/xgo/support/git"
)

// usage:
//
//	go run ./script/git-hooks install
//	go run ./script/git-hooks pre-commit

const help = `

Commands:
  install                   install git hooks
  pre-commit                run pre-commit hook

Examples:
 go run ./script/git-hooks install
 go run ./script/git-hooks pre-commit
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("requires command: install, pre-commit")
		os.Exit(1)
	}
	command := args[0]
	args = args[1:]

	if command == "--help" || command == "help" {
		fmt.Print(strings.TrimPrefix(help, "\n"))
		return
	}

	var verbose bool
	args, err := flags.Bool("--verbose", &verbose).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unrecognized extra arguments: %s\n", strings.Join(args, " "))
		os.Exit(1)
	}

	switch command {
	case "install":
		err = install()
	case "pre-commit":
		err = preCommitCheck(verbose)
	default:
		fmt.Fprintf(os.Stderr, "unrecognized command: %s\n", command)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

const preCommitCmdHead = "# go-script git-hooks"
const preCommitCmd = "go run ./script/git-hooks pre-commit"

func preCommitCheck(verbose bool) error {
	gitDir, err := git.ShowTopLevel("")
	if err != nil {
		return err
	}
	rootDir, err := filepath.Abs(gitDir)
	if err != nil {
		return err
	}

	stagedFiles, err := cmd.Dir(rootDir).Output("git", "diff", "--cached", "--name-only")
	if err != nil {
		return fmt.Errorf("failed to get staged files: %w", err)
	}
	if verbose {
		fmt.Printf("staged files:\n%s\n", stagedFiles)
	}

	// staged go files must be gofmt-clean
	var goFiles []string
	for _, file := range strings.Split(strings.TrimSpace(stagedFiles), "\n") {
		if strings.HasSuffix(file, ".go") {
			goFiles = append(goFiles, file)
		}
	}
	if len(goFiles) == 0 {
		return nil
	}

	output, err := cmd.Dir(rootDir).Output("gofmt", append([]string{"-l"}, goFiles...)...)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	output = strings.TrimSpace(output)
	if output != "" {
		return fmt.Errorf("gofmt needed:\n%s", output)
	}
	return nil
}

func install() error {
	// NOTE: is git dir, not toplevel dir when in worktree mode
	gitDir, err := git.GetGitDir("")
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	err = os.MkdirAll(hooksDir, 0755)
	if err != nil {
		return err
	}

	err = installHook(filepath.Join(hooksDir, "pre-commit"), preCommitCmdHead, preCommitCmd)
	if err != nil {
		return fmt.Errorf("pre-commit: %w", err)
	}
	return nil
}

func installHook(hookFile string, head string, hookCmd string) error {
	var needChmod bool
	err := fileutil.Patch(hookFile, func(data []byte) ([]byte, error) {
		if len(data) == 0 {
			needChmod = true
		}
		lines := strings.Split(string(data), "\n")
		idx := -1
		n := len(lines)
		for i := 0; i < n; i++ {
			if strings.Contains(lines[i], head) {
				idx = i
				break
			}
		}
		if idx < 0 {
			// insert
			lines = append(lines, head, hookCmd, "")
		} else {
			// replace
			endIdx := idx + 1
			for ; endIdx < n; endIdx++ {
				if strings.TrimSpace(lines[endIdx]) == "" {
					break
				}
			}
			oldLines := lines
			lines = lines[:idx]
			lines = append(lines, head, hookCmd, "")
			if endIdx < n {
				lines = append(lines, oldLines[endIdx:]...)
			}
		}

		return []byte(strings.Join(lines, "\n")), nil
	})
	if err != nil {
		return err
	}

	if needChmod {
		err := os.Chmod(hookFile, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}
