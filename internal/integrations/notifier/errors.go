package notifier

import "errors"

var (
	// ErrMarshal возвращается, когда не удалось сериализовать уведомление
	ErrMarshal = errors.New("notifier: failed to marshal notification")

	// ErrEnqueue возвращается, когда не удалось положить уведомление в очередь
	ErrEnqueue = errors.New("notifier: failed to enqueue notification")
)
