// Command cbtreectl is a small interactive test harness for the cbtree
// package: it drives a single u32-flavored tree from the command line so
// insertion and in-order traversal can be poked at, a sample tree dumped,
// and a randomized insert stress run checked, without writing a Go
// program first. It is a test harness, not a piece
// of the library's public surface, and is grounded on the original C
// sources' tests/ stress drivers.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"golang.org/x/term"

	"github.com/gostorage/cbtree"
	"github.com/gostorage/cbtree/dump"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	if os.Args[1] != "u32" {
		fmt.Fprintf(os.Stderr, "cbtreectl: unsupported flavor %q (only u32 is wired up)\n", os.Args[1])
		os.Exit(2)
	}

	cmd := os.Args[2]
	args := os.Args[3:]

	var err error
	switch cmd {
	case "insert":
		err = runInsert(args)
	case "dump":
		err = runDump(args)
	case "stress":
		err = runStress(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cbtreectl: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  cbtreectl u32 insert KEY [KEY...]
  cbtreectl u32 dump [-o FILE]
  cbtreectl u32 stress [-n COUNT] [-w WORKERS]`)
}

// interactive reports whether standard output is an actual terminal; paint
// only colors text when it is, so piped or redirected output gets plain text.
var interactive = term.IsTerminal(int(os.Stdout.Fd()))

func paint(c *color.Color, s string) string {
	if !interactive {
		return s
	}
	return c.Sprint(s)
}

func runInsert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("insert needs at least one key")
	}
	t := cbtree.NewU32()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, a := range args {
		key, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return fmt.Errorf("bad key %q: %w", a, err)
		}
		node := cbtree.NewU32Node(uint32(key))
		ret := t.Insert(node)
		if ret != node {
			fmt.Println(paint(yellow, fmt.Sprintf("%d already present", key)))
			continue
		}
		fmt.Println(paint(green, fmt.Sprintf("inserted %d", key)))
	}

	if err := t.Check(); err != nil {
		return fmt.Errorf("post-insert integrity check failed: %w", err)
	}

	fmt.Println("in order:")
	for n := t.First(); n != nil; n = t.Next(n.Key()) {
		fmt.Printf("  %d\n", n.Key())
	}
	return nil
}

func runDump(args []string) error {
	out := os.Stdout
	for i := 0; i < len(args); i++ {
		if args[i] == "-o" && i+1 < len(args) {
			f, err := os.Create(args[i+1])
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
			i++
		}
	}

	t := cbtree.NewU32()
	for _, k := range []uint32{2, 4, 6, 4} {
		t.Insert(cbtree.NewU32Node(k))
	}
	return dump.WriteDOT(out, t)
}

// stressUpdate is broadcast on the caster to every subscribed reporter
// goroutine as the stress run progresses.
type stressUpdate struct {
	done, total int64
}

func runStress(args []string) error {
	n := 1_000_000
	workers := 8
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n":
			if i+1 < len(args) {
				i++
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return err
				}
				n = v
			}
		case "-w":
			if i+1 < len(args) {
				i++
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return err
				}
				workers = v
			}
		}
	}

	t := cbtree.NewU32()
	var mu sync.Mutex
	var done int64

	bus := caster.New(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go reportProgress(ctx, bus, int64(n), &wg)

	perWorker := n / workers
	var workerWG sync.WaitGroup
	for w := 0; w < workers; w++ {
		workerWG.Add(1)
		go func(seed int64) {
			defer workerWG.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < perWorker; i++ {
				key := rnd.Uint32()
				mu.Lock()
				t.Insert(cbtree.NewU32Node(key))
				mu.Unlock()
				bus.Pub(stressUpdate{done: atomic.AddInt64(&done, 1), total: int64(n)})
			}
		}(int64(w) + time.Now().UnixNano())
	}
	workerWG.Wait()
	cancel()
	wg.Wait()

	if err := t.Check(); err != nil {
		return fmt.Errorf("post-stress integrity check failed: %w", err)
	}
	fmt.Println(paint(color.New(color.FgGreen), "stress run passed integrity check"))
	return nil
}

func reportProgress(ctx context.Context, bus *caster.Caster, total int64, wg *sync.WaitGroup) {
	defer wg.Done()
	ch, _ := bus.Sub(ctx, 64)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var last stressUpdate
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-ch:
			if !ok {
				return
			}
			last = v.(stressUpdate)
		case <-ticker.C:
			if last.total > 0 {
				fmt.Printf("\r%d/%d", last.done, total)
			}
		}
	}
}
