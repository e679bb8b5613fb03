package taxonomy

// GoalIcon pairs a savings-goal icon with its display color.
type GoalIcon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var GoalIcons = []GoalIcon{
	{ID: "vacation", Name: "Vacation", Icon: "plane", Color: "blue"},
	{ID: "car", Name: "Car", Icon: "car", Color: "slate"},
	{ID: "home", Name: "Home", Icon: "home", Color: "amber"},
	{ID: "education", Name: "Education", Icon: "graduation-cap", Color: "indigo"},
	{ID: "emergency", Name: "Emergency", Icon: "shield", Color: "red"},
	{ID: "retirement", Name: "Retirement", Icon: "piggy-bank", Color: "green"},
	{ID: "gadget", Name: "Tech", Icon: "smartphone", Color: "purple"},
	{ID: "wedding", Name: "Wedding", Icon: "heart", Color: "pink"},
	{ID: "health", Name: "Health", Icon: "heart-pulse", Color: "rose"},
	{ID: "other", Name: "Other", Icon: "target", Color: "gray"},
}

// GoalIconByID resolves an icon ID, falling back to the "other" icon.
func GoalIconByID(id string) GoalIcon {
	for _, icon := range GoalIcons {
		if icon.ID == id {
			return icon
		}
	}
	return GoalIcons[len(GoalIcons)-1]
}
