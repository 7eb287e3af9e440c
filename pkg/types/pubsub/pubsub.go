package pubsub

// Publisher pushes an opaque payload to whoever listens on the topic.
type Publisher interface {
	Publish(data []byte) error
}

// Subscriber starts consuming the topic until its context ends.
type Subscriber interface {
	Subscribe() error
}

type PubSub interface {
	Publisher
	Subscriber
}
