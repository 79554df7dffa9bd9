package server

// uiSharedJS is the script served at /ui/shared.js.
const uiSharedJS = uiSharedCoreJS + uiSharedWidgetsJS + uiSharedAlertsJS
