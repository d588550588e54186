package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dendrascience/memns/internal/manifest"
	"github.com/dendrascience/memns/namespace"
	"github.com/dendrascience/memns/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

// NewShellCmd creates and returns the shell subcommand for the memns CLI.
// It reads commands line by line and runs them against a fresh namespace.
func NewShellCmd() *cobra.Command {
	var (
		treePath string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Work on an in-memory namespace interactively",
		Long: `Start a line-oriented shell over a fresh in-memory namespace.

The shell opens one session to begin with. More sessions can be opened and
switched between with the session command; all of them share the same tree.
Type help for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFrom(cmd)
			ns := namespace.New(namespace.WithLogger(logger))
			if treePath != "" {
				res, err := manifest.LoadInto(ns, treePath)
				if err != nil {
					return fmt.Errorf("failed to load tree: %w", err)
				}
				logger.Info("tree loaded",
					zap.String("path", treePath),
					zap.Int("directories", res.Directories),
					zap.Int("files", res.Files),
					zap.Strings("failed", res.Failed))
			}

			sh := newShell(namespace.NewRegistry(ns), cmd.OutOrStdout())
			sh.color = !noColor
			return sh.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&treePath, "tree", "t", "", "YAML tree manifest to load before starting")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Do not colour the session id in the prompt")

	return cmd
}

type shell struct {
	reg     *namespace.Registry
	current *namespace.Session
	out     io.Writer
	color   bool
}

func newShell(reg *namespace.Registry, out io.Writer) *shell {
	return &shell{reg: reg, current: reg.Open(), out: out}
}

func (sh *shell) prompt() string {
	id := util.ShortID(sh.current.ID())
	if sh.color {
		id = util.Colorize(sh.current.ID(), id)
	}
	return fmt.Sprintf("%s:%s$ ", id, sh.current.Pwd())
}

func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, sh.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		if err := sh.exec(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(sh.out, err)
		}
	}
}

// exec runs one command line. Errors are meant for the user and do not end
// the shell, except errQuit.
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	s := sh.current

	switch name {
	case "exit", "quit":
		return errQuit

	case "help":
		fmt.Fprint(sh.out, shellHelp)

	case "pwd":
		fmt.Fprintln(sh.out, s.Pwd())

	case "ls":
		for _, entry := range s.List() {
			fmt.Fprintln(sh.out, entry)
		}

	case "mkdir":
		if len(args) == 0 {
			return errors.New("usage: mkdir PATH...")
		}
		for _, p := range args {
			ok, err := s.MakeDirectory(p)
			if err != nil {
				fmt.Fprintf(sh.out, "mkdir: %v\n", err)
			} else if !ok {
				fmt.Fprintf(sh.out, "mkdir: %s: cannot create directory\n", p)
			}
		}

	case "touch":
		if len(args) == 0 {
			return errors.New("usage: touch PATH...")
		}
		for _, p := range args {
			got, err := s.Touch(p)
			if err != nil {
				fmt.Fprintf(sh.out, "touch: %v\n", err)
			} else if got == "" {
				fmt.Fprintf(sh.out, "touch: %s: cannot create file\n", p)
			}
		}

	case "cd":
		target := util.RootPath
		if len(args) > 0 {
			target = args[0]
		}
		moved, err := s.Chdir(target)
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		if !moved {
			return fmt.Errorf("cd: %s: no such directory", target)
		}

	case "rm":
		recursive := false
		if len(args) > 0 && args[0] == "-r" {
			recursive = true
			args = args[1:]
		}
		if len(args) == 0 {
			return errors.New("usage: rm [-r] PATH...")
		}
		for _, p := range args {
			ok, err := s.Remove(p, recursive)
			if err != nil {
				fmt.Fprintf(sh.out, "rm: %v\n", err)
			} else if !ok {
				fmt.Fprintf(sh.out, "rm: %s: cannot remove\n", p)
			}
		}

	case "stats":
		fmt.Fprintln(sh.out, s.Namespace().Stats())

	case "tree":
		return s.Namespace().Walk(func(path string, n *namespace.Node) error {
			if n.IsDir() && path != util.RootPath {
				path += util.Delimiter
			}
			fmt.Fprintln(sh.out, path)
			return nil
		})

	case "session":
		return sh.session(args)

	default:
		return fmt.Errorf("%s: unknown command, try help", name)
	}
	return nil
}

func (sh *shell) session(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: session new|use ID|list|close ID")
	}

	switch args[0] {
	case "new":
		sh.current = sh.reg.Open()
		fmt.Fprintln(sh.out, sh.current.ID())

	case "list":
		for _, id := range sh.reg.IDs() {
			s, _ := sh.reg.Get(id)
			marker := " "
			if id == sh.current.ID() {
				marker = "*"
			}
			label := id
			if sh.color {
				label = util.Colorize(id, id)
			}
			fmt.Fprintf(sh.out, "%s %s %s\n", marker, label, s.Pwd())
		}

	case "use":
		if len(args) < 2 {
			return errors.New("usage: session use ID")
		}
		s, err := sh.find(args[1])
		if err != nil {
			return err
		}
		sh.current = s

	case "close":
		if len(args) < 2 {
			return errors.New("usage: session close ID")
		}
		s, err := sh.find(args[1])
		if err != nil {
			return err
		}
		if s == sh.current {
			return errors.New("session close: can not close the session in use")
		}
		sh.reg.Close(s.ID())

	default:
		return fmt.Errorf("session %s: unknown subcommand", args[0])
	}
	return nil
}

// find looks a session up by its full id or an unambiguous prefix.
func (sh *shell) find(prefix string) (*namespace.Session, error) {
	if s, ok := sh.reg.Get(prefix); ok {
		return s, nil
	}
	var match *namespace.Session
	for _, id := range sh.reg.IDs() {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("session %s: ambiguous id", prefix)
		}
		match, _ = sh.reg.Get(id)
	}
	if match == nil {
		return nil, fmt.Errorf("session %s: %w", prefix, namespace.ErrSessionNotFound)
	}
	return match, nil
}

const shellHelp = `Commands:
  ls                       list the working directory
  mkdir PATH...            create directories, parents included
  touch PATH...            create empty files or refresh their timestamp
  cd [PATH]                change the working directory (default /)
  pwd                      print the working directory
  rm [-r] PATH...          remove files, or directories with -r
  stats                    count entries in the namespace
  tree                     print every path in the namespace
  session new              open a session and switch to it
  session use ID           switch to a session (id prefix accepted)
  session list             list open sessions
  session close ID         close a session
  help                     show this text
  exit, quit               leave the shell
`
