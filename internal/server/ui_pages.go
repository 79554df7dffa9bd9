package server

// uiPagesJS is the script served at /ui/pages.js. It assumes
// /ui/shared.js loaded first.
const uiPagesJS = uiPagesAPIJS +
	uiPagesCardsJS +
	uiPagesActionsJS +
	uiPagesFeedJS +
	uiPagesRevealJS +
	uiPagesFormsJS +
	uiPagesSearchJS +
	uiPagesBootJS
