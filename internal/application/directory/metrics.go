package directory

import "github.com/jhoicas/linkbi-api/internal/domain/moderation"

// Recorder recibe los eventos de negocio que se exponen como métricas.
type Recorder interface {
	SubmissionCreated()
	StatusUpdated(status moderation.Status)
	ProviderDeleted()
}

type nopRecorder struct{}

func (nopRecorder) SubmissionCreated()                {}
func (nopRecorder) StatusUpdated(_ moderation.Status) {}
func (nopRecorder) ProviderDeleted()                  {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
