package rabbitmq

type Channel = channel

type Confirmation = confirmation

func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return newPublisher(ch, exchange)
}
