package notify

import "log"

// Kind of outbound message.
type Kind string

const (
	KindSMS   Kind = "sms"
	KindEmail Kind = "email"
)

type Message struct {
	Kind Kind
	To   string
	Body string
}

// Notifier is the fire-and-forget messaging stub: confirmations and
// staff campaigns are queued and logged, never actually sent, and no
// delivery guarantee exists. Wiring a real SMS/email provider means
// replacing only the worker.
type Notifier struct {
	queue chan Message
}

func New() *Notifier {
	n := &Notifier{queue: make(chan Message, 200)}
	go n.worker()
	return n
}

func (n *Notifier) worker() {
	for msg := range n.queue {
		log.Printf("notify [%s] to %s: %s", msg.Kind, msg.To, msg.Body)
	}
}

// Send never blocks the calling request; a full queue drops the
// message.
func (n *Notifier) Send(msg Message) {
	select {
	case n.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
