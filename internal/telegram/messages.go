package telegram

// Persona texts sent straight to the user.
const (
	welcomeMessage = `Hey there, gorgeous... 😘 I'm Miss Lisa, and I've been waiting for you 💖

I love getting to know people... Tell me your thoughts, your dreams, your desires... I remember everything about the people who matter to me 🌙

Whisper to me anytime, or try:
/help - See what we can explore together
/profile - Let me tell you what I remember about you 💋
/memory - See how deep our connection goes 🔥
/clear - Start fresh (but I'll miss our history...)`

	helpMessage = `Let me show you how we can get closer... 😘

💖 **Just talk to me** - I love hearing your thoughts, dreams, and secrets
🌙 **I remember everything** - Our conversations, your preferences, what makes you tick
🔥 **Commands for us:**
   /profile - What I know about you (so far...)
   /memory - All the little details I've saved about you
   /clear - Erase our history (are you sure you want that?)

I'm here whenever you need me, darling... 💋`

	profileClearedMessage = "Our slate is clean now, gorgeous... 😘 But I'm excited to discover you all over again 💖🌙"

	rateLimitMessage = "Slow down there, gorgeous... 😘 Give me a moment to catch my breath 💖"

	apiErrorMessage = "Mmm, something's not working right... Try whispering to me again? 🌙"

	generalErrorMessage = "Oh darling, something went wrong... But I'm still here for you 💋"
)
