package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v45/github"
)

// Version is set at compile time
var Version = ""

const (
	Owner = "pouriyajamshidi"
	Repo  = "kindof"
)

// PrintUsage prints how kindof should be run
func PrintUsage() {
	executableName := os.Args[0]

	fmt.Printf("\nkindof version %s\n\n", Version)
	fmt.Printf("Try running %s like:\n", executableName)
	fmt.Printf("%s [flags] [file ...]. For example:\n", executableName)
	fmt.Printf("%s -omit password,token users.json\n", executableName)
	fmt.Printf("curl -s https://api.example.com/items | %s -p\n", executableName)
	fmt.Printf("\nWith no file, or when file is -, standard input is read.\n")
	fmt.Printf("\n[optional flags]\n")

	fs, _ := newFlagSet(Defaults{})
	fs.VisitAll(func(f *flag.Flag) {
		flagName := f.Name
		if len(f.Name) > 1 {
			flagName = "-" + flagName
		}

		fmt.Printf("  -%s : %s\n", flagName, f.Usage)
	})

	fmt.Printf("\nDefaults may be set in %s or with KINDOF_* environment variables.\n",
		configDir()+string(os.PathSeparator)+"config.yaml")
}

func compareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	for i := range min(len(parts1), len(parts2)) {
		n1, _ := strconv.Atoi(parts1[i])
		n2, _ := strconv.Atoi(parts2[i])

		if n1 < n2 {
			return -1
		}
		if n1 > n2 {
			return 1
		}
	}

	// for cases in which version numbers differ in length
	if len(parts1) < len(parts2) {
		return -1
	}

	if len(parts1) > len(parts2) {
		return 1
	}

	return 0
}

// PrintVersion displays the version
func PrintVersion() {
	fmt.Printf("kindof version %s\n", Version)
}

var releaseTag = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// CheckForUpdates checks for newer versions of kindof and returns update message
func CheckForUpdates(ctx context.Context) (string, error) {
	c := github.NewClient(nil)

	// unauthenticated requests from the same IP are limited to 60 per hour
	latestRelease, _, err := c.Repositories.GetLatestRelease(ctx, Owner, Repo)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}

	return updateMessage(Version, latestRelease.GetTagName())
}

// updateMessage compares the running version with the latest release tag.
func updateMessage(current, latestTagName string) (string, error) {
	latestVersion := releaseTag.FindStringSubmatch(latestTagName)
	if len(latestVersion) == 0 {
		return "", fmt.Errorf("version name does not match expected format: %s", latestTagName)
	}

	switch compareVersions(current, latestVersion[1]) {
	case -1:
		return fmt.Sprintf("Found newer version %s\nPlease update kindof from the URL below:\nhttps://github.com/%s/%s/releases/tag/%s",
			latestVersion[1], Owner, Repo, latestTagName), nil
	case 1:
		return fmt.Sprintf("Current version %s is newer than the latest release %s",
			current, latestVersion[1]), nil
	default:
		return fmt.Sprintf("kindof is on the latest version: %s", current), nil
	}
}
