package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskledger/internal/ops"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backup":
		if err := cmdBackup(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "backup failed:", err)
			os.Exit(1)
		}
	case "restore":
		if err := cmdRestore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "restore failed:", err)
			os.Exit(1)
		}
	case "drill":
		if err := cmdDrill(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "drill failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "taskledger-"+ts+".tar.gz")
	}

	if err := ops.BackupDataDir(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreDataDir(*archive, *target)
}

// drill backs up the data dir, restores it to scratch space and replays
// both event logs to check they fold to the same state.
func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	logName := fs.String("log", "tasks.log", "event log filename inside the data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "taskledger-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "taskledger-drill-restore-"+ts)

	if err := ops.BackupDataDir(*dataDir, archive); err != nil {
		return err
	}
	if err := ops.RestoreDataDir(archive, restoreDir); err != nil {
		return err
	}

	srcReport, err := ops.VerifyLog(filepath.Join(*dataDir, *logName))
	if err != nil {
		return err
	}
	restoredReport, err := ops.VerifyLog(filepath.Join(restoreDir, *logName))
	if err != nil {
		return err
	}
	if srcReport != restoredReport {
		return fmt.Errorf("replay mismatch after restore: src=%+v restored=%+v", srcReport, restoredReport)
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	fmt.Printf("replay: %d lines, %d live tasks, %d malformed\n",
		srcReport.TotalLines, srcReport.LiveTasks, srcReport.MalformedLines)
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  taskledger-ops backup  --data-dir data --out backups/backup.tar.gz")
	fmt.Println("  taskledger-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  taskledger-ops drill   --data-dir data --work-dir /tmp")
}
