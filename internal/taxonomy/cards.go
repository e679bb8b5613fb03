package taxonomy

// CardGradients are the color tags assigned to new credit cards.
var CardGradients = []string{
	"from-blue-500 to-blue-700",
	"from-purple-500 to-indigo-600",
	"from-slate-700 to-black",
	"from-rose-400 to-orange-400",
	"from-emerald-500 to-teal-700",
}
