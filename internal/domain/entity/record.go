package entity

// Record es cualquier registro que vive en una colección del store, identificado por su ID.
type Record interface {
	RecordID() string
}
