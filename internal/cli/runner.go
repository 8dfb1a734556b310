package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todosh/internal/manager"
	"github.com/idilsaglam/todosh/internal/ui"
)

// commandKind is the closed set of things a session line can mean.
// Anything that doesn't parse is cmdUnknown and rejected explicitly.
type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdAdd
	cmdList
	cmdDone
	cmdDelete
	cmdUpdate
	cmdClear
	cmdSort
	cmdFilter
	cmdReset
	cmdHelp
	cmdExit
)

var commandNames = map[string]commandKind{
	"add":    cmdAdd,
	"list":   cmdList,
	"done":   cmdDone,
	"delete": cmdDelete,
	"update": cmdUpdate,
	"clear":  cmdClear,
	"sort":   cmdSort,
	"filter": cmdFilter,
	"reset":  cmdReset,
	"help":   cmdHelp,
	"exit":   cmdExit,
}

func parseCommand(tok string) commandKind {
	if k, ok := commandNames[strings.ToLower(tok)]; ok {
		return k
	}
	return cmdUnknown
}

// Runner is one interactive session: it reads lines from in, drives the
// manager, and prints results to out (notices and usage errors to errw).
type Runner struct {
	mgr  *manager.Manager
	in   io.Reader
	out  io.Writer
	errw io.Writer
}

func New(mgr *manager.Manager, in io.Reader, out, errw io.Writer) *Runner {
	return &Runner{mgr: mgr, in: in, out: out, errw: errw}
}

// Run processes lines until `exit` or end of input. One command is fully
// handled, including its synchronous file write, before the next line is
// read. A failed write is fatal and returned to the caller.
func (r *Runner) Run() error {
	fmt.Fprintln(r.out, ui.Title("todosh")+" - your todos, one line at a time")
	r.printHelp()

	sc := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !sc.Scan() {
			break // end of input closes the session
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		kind := parseCommand(fields[0])
		if kind == cmdExit {
			ui.Muted(r.out, "bye")
			return nil
		}
		if err := r.dispatch(kind, fields[1:]); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (r *Runner) dispatch(kind commandKind, args []string) error {
	switch kind {
	case cmdAdd:
		return r.doAdd(args)
	case cmdList:
		fmt.Fprintln(r.out, ui.RenderItems(r.mgr.Filter(manager.FilterAll)))
		return nil
	case cmdDone:
		return r.doDone(args)
	case cmdDelete:
		return r.doDelete(args)
	case cmdUpdate:
		return r.doUpdate(args)
	case cmdClear:
		if err := r.mgr.ClearCompleted(); err != nil {
			return err
		}
		ui.OK(r.out, "cleared completed items")
		return nil
	case cmdSort:
		order := manager.OrderAsc
		if len(args) > 0 {
			order = manager.ParseOrder(args[0])
		}
		fmt.Fprintln(r.out, ui.RenderItems(r.mgr.SortByDate(order)))
		return nil
	case cmdFilter:
		kindArg := ""
		if len(args) > 0 {
			kindArg = args[0]
		}
		fmt.Fprintln(r.out, ui.RenderItems(r.mgr.Filter(manager.ParseFilter(kindArg))))
		return nil
	case cmdReset:
		if err := r.mgr.Reset(); err != nil {
			return err
		}
		ui.OK(r.out, "all items removed")
		return nil
	case cmdHelp:
		r.printHelp()
		return nil
	default:
		ui.Fail(r.errw, "unknown command (type `help` for the list)")
		return nil
	}
}

func (r *Runner) doAdd(args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		ui.Fail(r.errw, "usage: add <title...>")
		return nil
	}
	it, err := r.mgr.Create(title, nil)
	if err != nil {
		return err
	}
	ui.OK(r.out, fmt.Sprintf("added %q (%s)", it.Title, it.ID))
	return nil
}

func (r *Runner) doDone(args []string) error {
	if len(args) != 1 {
		ui.Fail(r.errw, "usage: done <id>")
		return nil
	}
	if err := r.mgr.Toggle(args[0]); err != nil {
		return err
	}
	ui.OK(r.out, "toggled")
	return nil
}

func (r *Runner) doDelete(args []string) error {
	if len(args) != 1 {
		ui.Fail(r.errw, "usage: delete <id>")
		return nil
	}
	if err := r.mgr.Delete(args[0]); err != nil {
		return err
	}
	ui.OK(r.out, "removed")
	return nil
}

func (r *Runner) doUpdate(args []string) error {
	if len(args) < 2 {
		ui.Fail(r.errw, "usage: update <id> <new title...>")
		return nil
	}
	title := strings.Join(args[1:], " ")
	// The update command never carries a due date; it is always cleared.
	if err := r.mgr.Update(args[0], title, nil); err != nil {
		return err
	}
	ui.OK(r.out, "updated")
	return nil
}

func (r *Runner) printHelp() {
	fmt.Fprintf(r.out, `
Commands:
  add <title...>          Add a new item (title can be multiple words)
  list                    List items in stored order
  done <id>               Toggle completion for the item with this id
  delete <id>             Remove the item with this id
  update <id> <title...>  Replace an item's title (clears its due date)
  clear                   Remove every completed item
  sort [asc|desc]         Show items sorted by creation time (default asc)
  filter [all|active|completed]   Show a filtered view
  reset                   Remove all items
  help                    Show this reference
  exit                    End the session

`)
}
