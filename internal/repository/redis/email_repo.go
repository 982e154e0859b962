package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute

	emailCodePrefix = "email:code"
	pendingSuffix   = "pending"
	confirmedSuffix = "confirmed"
)

var (
	ErrEmailCodeNotFound  = errors.New("email code not found")
	ErrCodePendingFailed  = errors.New("code pending failed")
	ErrCodeConfirmFailed  = errors.New("code confirm failed")
	ErrEmailCodeDelFailed = errors.New("email code delete failed")
)

// EmailCodeRepository stores verification codes per scope ("register" or
// "reset") in two phases: a pending key written before the mail goes out,
// promoted to confirmed once delivery succeeded. Only confirmed codes are
// accepted at verification time.
type EmailCodeRepository struct{}

func pendingKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", emailCodePrefix, scope, pendingSuffix, email)
}

func confirmedKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", emailCodePrefix, scope, confirmedSuffix, email)
}

func (e *EmailCodeRepository) SetPendingCode(ctx context.Context, scope, email, code string) error {
	if err := Client.Set(ctx, pendingKey(scope, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// ConfirmPendingCode atomically moves pending -> confirmed with a fresh TTL.
func (e *EmailCodeRepository) ConfirmPendingCode(ctx context.Context, scope, email string) error {
	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(ctx, script, []string{pendingKey(scope, email), confirmedKey(scope, email)}, px)
	if res.Err() != nil {
		return ErrCodeConfirmFailed
	}
	if ok, _ := res.Int(); ok != 1 {
		return ErrCodeConfirmFailed
	}
	return nil
}

func (e *EmailCodeRepository) DeletePendingCode(ctx context.Context, scope, email string) error {
	if err := Client.Del(ctx, pendingKey(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

func (e *EmailCodeRepository) GetConfirmedCode(ctx context.Context, scope, email string) (string, error) {
	val, err := Client.Get(ctx, confirmedKey(scope, email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrEmailCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (e *EmailCodeRepository) DeleteConfirmedCode(ctx context.Context, scope, email string) error {
	if err := Client.Del(ctx, confirmedKey(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
