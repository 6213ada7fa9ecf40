package mirror

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Syncer mirrors a source filesystem into a destination filesystem.
// Both filesystems are rooted at their respective directories; all plan
// paths are slash-separated and relative to those roots. The source is
// only ever read.
type Syncer struct {
	source  billy.Filesystem
	dest    billy.Filesystem
	exclude []string
}

// NewSyncer creates a syncer for the given source and destination
// roots. Excluded subpaths are never copied to and never removed from
// the destination, regardless of their source-side state.
func NewSyncer(source, dest billy.Filesystem, exclude ...string) *Syncer {
	cleaned := make([]string, 0, len(exclude))
	for _, e := range exclude {
		e = strings.Trim(path.Clean(strings.ReplaceAll(e, "\\", "/")), "/")
		if e != "" && e != "." {
			cleaned = append(cleaned, e)
		}
	}
	return &Syncer{
		source:  source,
		dest:    dest,
		exclude: cleaned,
	}
}

// Plan computes the changes needed to make the destination match the
// source outside the excluded subpaths. The destination is not modified.
func (s *Syncer) Plan() (*Plan, error) {
	srcFiles := make(map[string]os.FileInfo)
	srcDirs := make(map[string]bool)

	if err := s.walkSource(".", srcFiles, srcDirs); err != nil {
		return nil, err
	}

	plan := &Plan{}

	// Copy pass: source-side directories and files drive creates and
	// updates.
	for _, dir := range sortedKeys(srcDirs) {
		info, err := s.dest.Stat(dir)
		switch {
		case err != nil && os.IsNotExist(err):
			plan.Changes = append(plan.Changes, FileChange{Type: ChangeTypeCreate, Path: dir, IsDir: true})
		case err != nil:
			return nil, WrapIOError(err, dir)
		case !info.IsDir():
			// The delete pass removes the conflicting file; the
			// directory still has to be recreated in the copy pass.
			plan.Changes = append(plan.Changes, FileChange{Type: ChangeTypeCreate, Path: dir, IsDir: true})
		}
	}

	filePaths := make([]string, 0, len(srcFiles))
	for p := range srcFiles {
		filePaths = append(filePaths, p)
	}
	sort.Strings(filePaths)

	for _, p := range filePaths {
		destInfo, err := s.dest.Stat(p)
		switch {
		case err != nil && os.IsNotExist(err):
			plan.Changes = append(plan.Changes, FileChange{Type: ChangeTypeCreate, Path: p})
		case err != nil:
			return nil, WrapIOError(err, p)
		case destInfo.IsDir():
			// The delete pass removes the conflicting directory;
			// recreating the path as a file is a plain create.
			plan.Changes = append(plan.Changes, FileChange{Type: ChangeTypeCreate, Path: p})
		default:
			same, err := s.contentsEqual(p, srcFiles[p], destInfo)
			if err != nil {
				return nil, err
			}
			if !same {
				plan.Changes = append(plan.Changes, FileChange{Type: ChangeTypeUpdate, Path: p})
			}
		}
	}

	// Delete pass: destination entries with no source counterpart.
	deletes, err := s.planDeletes(".", srcFiles, srcDirs)
	if err != nil {
		return nil, err
	}
	plan.Changes = append(plan.Changes, deletes...)

	return plan, nil
}

// Apply executes the plan against the destination. Deletes run first so
// that directory/file type conflicts are resolved before the copy pass.
func (s *Syncer) Apply(plan *Plan) error {
	for _, change := range plan.Changes {
		if change.Type != ChangeTypeDelete {
			continue
		}
		if err := s.applyDelete(change); err != nil {
			return err
		}
	}

	for _, change := range plan.Changes {
		if change.Type == ChangeTypeDelete {
			continue
		}
		if err := s.applyCopy(change); err != nil {
			return err
		}
	}

	return nil
}

// Sync plans and applies in one step, returning the applied plan
func (s *Syncer) Sync() (*Plan, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}
	if err := s.Apply(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Syncer) walkSource(dir string, files map[string]os.FileInfo, dirs map[string]bool) error {
	entries, err := s.source.ReadDir(dir)
	if err != nil {
		return WrapIOError(err, dir)
	}
	sortEntries(entries)

	for _, entry := range entries {
		rel := joinRel(dir, entry.Name())
		if s.isExcluded(rel) {
			continue
		}
		if entry.IsDir() {
			dirs[rel] = true
			if err := s.walkSource(rel, files, dirs); err != nil {
				return err
			}
		} else {
			files[rel] = entry
		}
	}

	return nil
}

func (s *Syncer) planDeletes(dir string, srcFiles map[string]os.FileInfo, srcDirs map[string]bool) ([]FileChange, error) {
	entries, err := s.dest.ReadDir(dir)
	if err != nil {
		// The destination subtree may simply not exist yet.
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, WrapIOError(err, dir)
	}
	sortEntries(entries)

	var changes []FileChange
	for _, entry := range entries {
		rel := joinRel(dir, entry.Name())
		if s.isExcluded(rel) {
			continue
		}
		if entry.IsDir() {
			if srcDirs[rel] || s.shelterExclusion(rel) {
				// Keep the directory itself, descend for stale entries.
				nested, err := s.planDeletes(rel, srcFiles, srcDirs)
				if err != nil {
					return nil, err
				}
				changes = append(changes, nested...)
			} else {
				changes = append(changes, FileChange{Type: ChangeTypeDelete, Path: rel, IsDir: true})
			}
		} else if _, ok := srcFiles[rel]; !ok {
			changes = append(changes, FileChange{Type: ChangeTypeDelete, Path: rel})
		}
	}

	return changes, nil
}

func (s *Syncer) applyDelete(change FileChange) error {
	if change.IsDir {
		if err := util.RemoveAll(s.dest, change.Path); err != nil {
			return WrapIOError(err, change.Path)
		}
		return nil
	}
	if err := s.dest.Remove(change.Path); err != nil {
		return WrapIOError(err, change.Path)
	}
	return nil
}

func (s *Syncer) applyCopy(change FileChange) error {
	if change.IsDir {
		if err := s.dest.MkdirAll(change.Path, 0755); err != nil {
			return WrapIOError(err, change.Path)
		}
		return nil
	}

	data, err := util.ReadFile(s.source, change.Path)
	if err != nil {
		return WrapIOError(err, change.Path)
	}

	info, err := s.source.Stat(change.Path)
	if err != nil {
		return WrapIOError(err, change.Path)
	}

	if parent := path.Dir(change.Path); parent != "." {
		if err := s.dest.MkdirAll(parent, 0755); err != nil {
			return WrapIOError(err, parent)
		}
	}

	if err := util.WriteFile(s.dest, change.Path, data, info.Mode().Perm()); err != nil {
		return WrapIOError(err, change.Path)
	}

	return nil
}

// contentsEqual compares a source and destination file, checking sizes
// before falling back to content digests
func (s *Syncer) contentsEqual(p string, srcInfo, destInfo os.FileInfo) (bool, error) {
	if srcInfo.Size() != destInfo.Size() {
		return false, nil
	}

	srcDigest, err := fileDigest(s.source, p)
	if err != nil {
		return false, err
	}
	destDigest, err := fileDigest(s.dest, p)
	if err != nil {
		return false, err
	}

	return srcDigest == destDigest, nil
}

// isExcluded reports whether rel matches an exclusion or sits below one
func (s *Syncer) isExcluded(rel string) bool {
	for _, e := range s.exclude {
		if rel == e || strings.HasPrefix(rel, e+"/") {
			return true
		}
	}
	return false
}

// shelterExclusion reports whether an exclusion lives below rel, in
// which case rel cannot be removed recursively
func (s *Syncer) shelterExclusion(rel string) bool {
	for _, e := range s.exclude {
		if strings.HasPrefix(e, rel+"/") {
			return true
		}
	}
	return false
}

func joinRel(dir, name string) string {
	if dir == "." {
		return name
	}
	return path.Join(dir, name)
}

func sortEntries(entries []os.FileInfo) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
