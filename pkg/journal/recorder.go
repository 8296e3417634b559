package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// Recorder applies writes to a tree and logs one event per write.
type Recorder struct {
	tree    *paramtree.Tree
	logger  Logger
	session string
	source  string
	now     func() time.Time
}

// NewRecorder wraps tree. A nil logger records nothing.
func NewRecorder(tree *paramtree.Tree, logger Logger) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{
		tree:    tree,
		logger:  logger,
		session: uuid.NewString(),
		now:     time.Now,
	}
}

// WithSource sets the document name stamped on events.
func (r *Recorder) WithSource(source string) *Recorder {
	r.source = source
	return r
}

// SessionID returns the session stamped on events.
func (r *Recorder) SessionID() string { return r.session }

// Tree returns the wrapped tree.
func (r *Recorder) Tree() *paramtree.Tree { return r.tree }

// Set writes value like paramtree.Tree.Set.
func (r *Recorder) Set(path, value string) error {
	return r.apply(KindSet, path, func() error { return r.tree.Set(path, value) })
}

// SetForce writes value like paramtree.Tree.SetForce.
func (r *Recorder) SetForce(path, value string) error {
	return r.apply(KindSet, path, func() error { return r.tree.SetForce(path, value) })
}

// Unset clears the parameter at path.
func (r *Recorder) Unset(path string) error {
	return r.apply(KindUnset, path, func() error { return r.tree.Unset(path) })
}

func (r *Recorder) apply(kind Kind, path string, write func() error) error {
	event := Event{
		SessionID: r.session,
		Root:      r.tree.Schema().Name,
		Kind:      kind,
		Path:      path,
		Source:    r.source,
	}
	if before, err := r.tree.Get(path); err == nil {
		event.Old, event.OldSet = before.Text(), before.Set
	}

	err := write()
	event.Timestamp = r.now()
	if err != nil {
		event.Kind = KindRejected
		event.Error = err.Error()
		r.logger.Log(event)
		return err
	}

	if after, err := r.tree.Get(path); err == nil {
		event.New, event.NewSet = after.Text(), after.Set
	}
	event.Fingerprint = r.tree.Fingerprint()
	r.logger.Log(event)
	return nil
}
