package websocket

import (
	"log"
	"net/http"
	"strings"

	"adhkari/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EngagementWebSocketHandler handles WebSocket connections for live
// engagement updates (points, claims, streaks)
func EngagementWebSocketHandler(c *gin.Context) {
	// Token comes from the Authorization header or, for browser WebSocket
	// clients that cannot set headers, a query parameter
	var tokenString string
	authz := c.GetHeader("Authorization")
	if authz != "" {
		tokenParts := strings.Split(authz, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			tokenString = tokenParts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	claims, err := utils.ParseJWTToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade engagement connection: %v", err)
		return
	}

	client := &EngagementClient{Conn: conn, UserID: claims.UserID}
	RegisterEngagementClient(client)
	defer UnregisterEngagementClient(client)

	// The feed is one-way; drain reads until the client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
