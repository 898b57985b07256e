package notifier

// Publisher accepts a post title and a transport-encoded body and
// submits them to an external posting service.
type Publisher interface {
	Submit(title, body string) error
}
