package sqlite

import "github.com/homecart/backend/internal/domain"

// Default family data seeded on first run. Categories mirror a typical
// Israeli grocery layout; "other" is the fallback bucket for unmatched items
// and always sorts last.
var defaultCategories = []domain.Category{
	{ID: "dairy", Name: "חלב וביצים", Icon: "🥛", Color: "#E3F2FD", Position: 0},
	{ID: "bread", Name: "לחם ומאפים", Icon: "🥖", Color: "#FFF3E0", Position: 1},
	{ID: "fruits", Name: "ירקות ופירות", Icon: "🥬", Color: "#E8F5E9", Position: 2},
	{ID: "meat", Name: "בשר ודגים", Icon: "🥩", Color: "#FFEBEE", Position: 3},
	{ID: "frozen", Name: "קפואים", Icon: "🧊", Color: "#E1F5FE", Position: 4},
	{ID: "canned", Name: "שימורים ויבשים", Icon: "🥫", Color: "#FBE9E7", Position: 5},
	{ID: "snacks", Name: "חטיפים ומתוקים", Icon: "🍪", Color: "#FFF8E1", Position: 6},
	{ID: "drinks", Name: "משקאות", Icon: "🥤", Color: "#F3E5F5", Position: 7},
	{ID: "cleaning", Name: "ניקיון", Icon: "🧹", Color: "#E0F7FA", Position: 8},
	{ID: "hygiene", Name: "טיפוח והיגיינה", Icon: "🧴", Color: "#FCE4EC", Position: 9},
	{ID: domain.CategoryOther, Name: "אחר", Icon: "📦", Color: "#ECEFF1", Position: 100},
}

var defaultLists = []domain.ShoppingList{
	{ID: "default", Name: "רשימה ראשית"},
}
