// Package discover resolves the default input file when the caller does
// not name one: the Contacts.vcf inside the newest BusyContacts backup
// snapshot. The parsing core never reaches into the filesystem search
// itself; it only receives the resolved path.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	apperrors "vcfsheet/pkg/common/errors"
)

// contactsFileName is the vCard file inside each backup snapshot.
const contactsFileName = "Contacts.vcf"

// LatestBackupVCF finds the newest *.babu backup directory under root
// and returns the path of the Contacts.vcf inside it. Backup directories
// carry timestamped names, so lexicographic order is chronological
// order.
func LatestBackupVCF(root string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(root, "*.babu"))
	if err != nil {
		return "", fmt.Errorf("bad backup root %q: %w", root, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no *.babu backups under %s", apperrors.ErrNotFound, root)
	}
	sort.Strings(matches)
	latest := matches[len(matches)-1]

	entries, err := os.ReadDir(latest)
	if err != nil {
		return "", fmt.Errorf("failed to read backup %s: %w", latest, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(latest, e.Name(), contactsFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s inside %s", apperrors.ErrNotFound, contactsFileName, latest)
}
