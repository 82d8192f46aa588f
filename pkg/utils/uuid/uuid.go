package uuid

import (
	"encoding/hex"

	"github.com/gofrs/uuid"
)

// GenUUID4 生成 32 位（无连字符）的 UUID4 字符串，用作请求 ID
func GenUUID4() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}
