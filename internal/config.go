package internal

// Config defines the environment variables of the room client.
type Config struct {
	ServerBaseURL  string `env:"SERVER_BASE_URL,default=http://localhost:8080"`
	WebSocketURL   string `env:"WEBSOCKET_URL,default=ws://localhost:8080/ws"`
	DefaultRoomID  int    `env:"ROOM_ID,default=1"`
	Username       string `env:"USERNAME,required=true"`
	Nickname       string `env:"NICKNAME"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	PageSize       int    `env:"PAGE_SIZE,default=20"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`
}
